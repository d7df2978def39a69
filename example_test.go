// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package fjson_test

import (
	"fmt"
	"log"

	"github.com/creachadair/fjson"
)

const exampleInput = `// This is a JSON value with comments and trailing commas
{
    /* The project name is fjson */
    "project": "fjson",
    "language": "Go",
    "license": [
        "MIT",
    ],


    // This project is public.
    "public": true,
}`

func ExampleToJSONC() {
	out, err := fjson.ToJSONC(exampleInput)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// // This is a JSON value with comments and trailing commas
	// {
	//   /* The project name is fjson */
	//   "project": "fjson",
	//   "language": "Go",
	//   "license": ["MIT"],
	//
	//   // This project is public.
	//   "public": true
	// }
}

func ExampleToJSON() {
	out, err := fjson.ToJSON(exampleInput)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// {
	//   "project": "fjson",
	//   "language": "Go",
	//   "license": ["MIT"],
	//   "public": true
	// }
}

func ExampleToJSONCompact() {
	out, err := fjson.ToJSONCompact(exampleInput)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// {"project":"fjson","language":"Go","license":["MIT"],"public":true}
}
