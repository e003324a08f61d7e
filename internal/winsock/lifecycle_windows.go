package winsock

import (
	"github.com/apex/log"
	"golang.org/x/sys/windows"
)

// Startup initializes Winsock 2.2.
func Startup() (*Session, error) {
	var data windows.WSAData
	if err := windows.WSAStartup(uint32(0x0202), &data); err != nil {
		return nil, err
	}
	log.Debugf("winsock: started, version %#04x", data.Version)
	return &Session{}, nil
}

func cleanup() error {
	log.Debug("winsock: cleanup")
	return windows.WSACleanup()
}
