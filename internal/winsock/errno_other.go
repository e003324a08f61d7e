//go:build !windows

package winsock

import "fmt"

func errnoString(e Errno) string {
	return fmt.Sprintf("winsock error %d", int32(e))
}
