package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty (only p == "" is checked, no TrimSpace); otherwise returns p.
// Used for fail-fast validation of required strings in constructors.
//
// Called from service.NewCampaignClient (serverURL).
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func); otherwise returns v
// with its static type preserved.
//
// Called from every constructor that takes collaborators: service.NewDispatcher, service.NewCampaignClient,
// service.NewWorkerPool, service.NewEnvelopeBuilder, adapters.TransportHTTP, handlers.NewHTTPServer and others.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil or a typed nil (pointer, slice, map, chan, func, interface).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
