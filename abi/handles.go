package main

import (
	"sync"
	"sync/atomic"

	"github.com/exath-lang/exath"
)

var (
	sessions   = map[uintptr]*exath.Session{}
	sessionsMu sync.RWMutex
	nextHandle uint64
)

func registerSession(s *exath.Session) uintptr {
	h := uintptr(atomic.AddUint64(&nextHandle, 1))
	sessionsMu.Lock()
	sessions[h] = s
	sessionsMu.Unlock()
	return h
}

func lookupSession(h uintptr) (*exath.Session, bool) {
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	s, ok := sessions[h]
	return s, ok
}

func releaseSession(h uintptr) {
	sessionsMu.Lock()
	delete(sessions, h)
	sessionsMu.Unlock()
}
