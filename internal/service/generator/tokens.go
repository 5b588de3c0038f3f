package generator

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// promptTokens estimates the token footprint of a built prompt for debug
// reporting. The encoding load can fail offline; callers treat that as
// "unknown", never as a pipeline error.
func promptTokens(text string) (int, error) {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil {
		return 0, tkErr
	}
	return len(tk.Encode(text, nil, nil)), nil
}
