package differ_test

import (
	"fmt"
	"log"

	"github.com/erraggy/jsontools/differ"
	"github.com/erraggy/jsontools/parser"
)

func mustParse(src string) *parser.Node {
	result, err := parser.New().ParseString(src)
	if err != nil {
		log.Fatal(err)
	}
	return result.Document
}

// Example demonstrates basic document comparison
func Example() {
	expected := mustParse(`{"name":"widget","price":10.0}`)
	actual := mustParse(`{"name":"widget","price":12.5}`)

	d, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}

	result := d.Compare(expected, actual)
	fmt.Println(result.String())

	// Output:
	// found 1 difference(s) between expected and actual:
	//   value mismatch at "price": expected 10.0, found 12.5
}

// Example_differences demonstrates iterating over individual differences
func Example_differences() {
	expected := mustParse(`{"a":1,"b":2}`)
	actual := mustParse(`{"b":3,"c":4}`)

	d, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}

	for _, diff := range d.Compare(expected, actual).Differences() {
		fmt.Println(diff.String())
	}

	// Output:
	// missing field at "a": expected 1
	// extra field at "c": found unexpected 4
	// value mismatch at "b": expected 2, found 3
}

// Example_ignoreMarker demonstrates skipping unpredictable values
func Example_ignoreMarker() {
	// Generated identifiers and timestamps cannot be predicted; mark them
	// ignored in the expected document.
	expected := mustParse(`{"id":"${json-unit.ignore}","name":"widget"}`)
	actual := mustParse(`{"id":12345,"name":"widget"}`)

	d, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("similar:", d.Compare(expected, actual).Similar())

	// Output:
	// similar: true
}

// Example_tolerance demonstrates approximate numeric comparison
func Example_tolerance() {
	expected := mustParse(`{"total":99.95}`)
	actual := mustParse(`{"total":99.955}`)

	d, err := differ.New(differ.WithTolerance(0.01))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("similar:", d.Compare(expected, actual).Similar())

	// Output:
	// similar: true
}

// Example_structure demonstrates shape-only comparison
func Example_structure() {
	expected := mustParse(`{"user":{"id":1,"name":"alice"}}`)
	actual := mustParse(`{"user":{"id":99,"name":"bob"}}`)

	d, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}

	result := d.Compare(expected, actual)
	fmt.Println("values match:", result.Similar())
	fmt.Println("shapes match:", result.SimilarStructure())

	// Output:
	// values match: false
	// shapes match: true
}

// Example_lenient demonstrates tolerating extra fields in the actual document
func Example_lenient() {
	expected := mustParse(`{"name":"widget"}`)
	actual := mustParse(`{"name":"widget","internal":true}`)

	strict, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}
	lenient, err := differ.New(differ.WithExtraFields(differ.ExtraFieldsLenient))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("strict:", strict.Compare(expected, actual).Similar())
	fmt.Println("lenient:", lenient.Compare(expected, actual).Similar())

	// Output:
	// strict: false
	// lenient: true
}

// Example_compareAt demonstrates comparing against a subtree of a larger
// document
func Example_compareAt() {
	document := mustParse(`{"order":{"items":[{"sku":"A-1","qty":2}]}}`)
	expected := mustParse(`{"sku":"A-1","qty":3}`)

	d, err := differ.New()
	if err != nil {
		log.Fatal(err)
	}

	result, err := d.CompareAt(expected, document, "order.items[0]")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.String())

	// Output:
	// found 1 difference(s) between expected and actual:
	//   value mismatch at "order.items[0].qty": expected 3, found 2
}
