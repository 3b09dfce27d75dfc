package object_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/object"
)

func ExampleGet() {
	m := map[string]any{
		"user": map[string]any{
			"tags": []any{"admin", "ops"},
		},
	}
	fmt.Println(object.Get(m, "user.tags[1]"))
	fmt.Println(object.Get(m, "user.address.city", "unknown"))
	// Output:
	// ops
	// unknown
}

func ExampleSet() {
	m := map[string]any{}
	object.Set(m, "config.debug", true)
	fmt.Println(object.Get(m, "config.debug"))
	// Output: true
}

func ExampleToPath() {
	fmt.Printf("%q\n", object.ToPath("a.b[0].c"))
	// Output: ["a" "b" "0" "c"]
}
