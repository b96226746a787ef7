package regexenum_test

import (
	"fmt"
	"math/big"

	"github.com/coregx/regexenum"
)

func ExampleCompile() {
	space, err := regexenum.Compile(`ba[rz]`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(space.Len())
	for _, s := range regexenum.AllStrings(space) {
		fmt.Println(s)
	}
	// Output:
	// 2
	// bar
	// baz
}

func ExampleSpace_GetMatch() {
	space, err := regexenum.Compile(`(["'])([01]{3})\1`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := space.GetMatch(big.NewInt(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Group(0))
	fmt.Println(m.Group(1))
	fmt.Println(m.Group(2))
	// Output:
	// "000"
	// "
	// 000
}

func ExampleSpace_Contains() {
	space := regexenum.MustCompile(`[a-c]{2,3}`)
	fmt.Println(space.Contains("ab"))
	fmt.Println(space.Contains("abcd"))
	// Output:
	// true
	// false
}
