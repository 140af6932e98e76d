// Command polyclip runs polygon boolean operations described by a
// YAML scenario file.
package main

func main() {
	Execute()
}
