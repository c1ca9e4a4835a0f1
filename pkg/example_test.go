package pkg_test

import (
	"fmt"

	"topzip/pkg"
)

func ExampleEncode() {
	blob, err := pkg.Encode([]byte("aaab"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", blob)

	out, err := pkg.Decode(blob)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	// Output:
	// 02 04 61 03 00 62 01 00 e0
	// aaab
}

func ExampleInspect() {
	blob, _ := pkg.Encode([]byte("abracadabra"))
	info, err := pkg.Inspect(blob)
	if err != nil {
		panic(err)
	}
	for _, e := range info.Header.Table {
		fmt.Printf("%c %d %s\n", e.Symbol, e.Count, info.Codes[e.Symbol])
	}

	// Output:
	// a 5 0
	// b 2 110
	// r 2 111
	// c 1 100
	// d 1 101
}
