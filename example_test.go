package prettyprinter_test

import (
	"fmt"
	"log"

	pp "github.com/glguy/prettyprinter"
)

// Example_basic lays the same document out at two widths: the group fits
// on one line at 40 columns and breaks at 10.
func Example_basic() {
	d := pp.Sep(
		pp.Text[any]("hello"),
		pp.Text[any]("wonderful"),
		pp.Text[any]("world"),
	)

	wide, err := pp.Format(d, pp.WithMaxWidth(40))
	if err != nil {
		log.Fatal(err)
	}
	narrow, err := pp.Format(d, pp.WithMaxWidth(10))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(wide)
	fmt.Println("---")
	fmt.Println(narrow)
	// Output:
	// hello wonderful world
	// ---
	// hello
	// wonderful
	// world
}

// ExampleNest shows how nesting indents the lines that break inside it.
func ExampleNest() {
	d := pp.Concat(
		pp.Text[any]("items:"),
		pp.Nest(2, pp.Concat(
			pp.Line[any](), pp.Text[any]("apples"),
			pp.Line[any](), pp.Text[any]("pears"),
		)),
	)

	out, err := pp.Format(d, pp.WithMaxWidth(80), pp.WithPolicy(pp.PolicyPretty))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// items:
	//   apples
	//   pears
}

// ExampleAnnotate attaches tags that layout ignores but renderers see.
func ExampleAnnotate() {
	d := pp.Concat(
		pp.Annotate("keyword", pp.Text[string]("if")),
		pp.Text[string](" ok {"),
	)

	s := pp.Layout(d, nil)
	for _, ev := range s.Collect() {
		fmt.Println(ev.Kind.String())
	}
	// Output:
	// PushAnnotation
	// Text
	// PopAnnotation
	// Text
}
