// Command vocabflash is the single-user local front end. Vocabulary lives in
// a badger snapshot on disk; no server or account is needed.
package main

import (
	"fmt"
	"os"
)

func main() {
	cc := newCommandContext()
	err := newRootCommand(cc).Execute()
	if cerr := cc.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
