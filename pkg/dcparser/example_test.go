/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser_test

import (
	"fmt"

	"github.com/voedger/dclass/pkg/dcparser"
)

func ExampleParseString() {
	file, res := dcparser.ParseString("example.dc", `
keyword ram db;

struct Point {
	x: int16;
	y: int16;
}

class Monster {
	hp: uint8(0-100) = 100 ram db;
	home: Point = (10, -2) db;
	hits: uint8 = 250 bad;
}
`)
	fmt.Println("errors:", res.Errors())
	for _, d := range res.Diagnostics() {
		fmt.Println(d)
	}

	monster, _ := file.ClassByName("Monster")
	for _, f := range monster.Fields() {
		fmt.Printf("%s: %v %v % x\n", f.Name(), f.Type(), f.Keywords(), f.DefaultValue())
	}

	// Output:
	// errors: 1
	// example.dc:12:20: error: Keyword 'bad' has not been declared.
	// hp: uint8 [ram db] 64
	// home: struct Point [db] 0a 00 fe ff
	// hits: uint8 [] fa
}
