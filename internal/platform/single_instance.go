package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strconv"
)

const (
	minGuardPort = 20000
	maxGuardPort = 39999
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard keeps a loopback port bound for the life of the process so
// a second timer cannot start alongside the first.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the port derived from appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := GuardAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is taken", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// GuardAddress returns the loopback address reserved for appName.
func GuardAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := uint32(maxGuardPort - minGuardPort + 1)
	port := minGuardPort + int(hash.Sum32()%rangeSize)
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}
