// Command heapctl replays allocation scripts against a heapkit heap and
// reports what the region list looks like afterwards.
package main

func main() {
	execute()
}
