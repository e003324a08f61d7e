package winsock

import "golang.org/x/sys/windows"

func errnoString(e Errno) string {
	return windows.Errno(e).Error()
}
