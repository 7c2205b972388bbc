package main

import "fmt"

const version = "0.1.0"

func printVersion() {
	fmt.Printf("rkrgst %s\n", version)
}

// readBytesArgOrFile resolves a positional value against a --*-file flag:
// the file wins whenever filePath is non-empty, matching the "file or inline"
// convention of MatchCmd's positional arguments.
func readBytesArgOrFile(inline string, filePath string, readFile func(string) ([]byte, error)) ([]byte, error) {
	if filePath != "" {
		return readFile(filePath)
	}
	return []byte(inline), nil
}
