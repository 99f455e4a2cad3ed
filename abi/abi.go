/*
File    : exath/abi/abi.go

Package abi is the C-ABI boundary (spec.md §6 "C-ABI wrapper"). It is
deliberately thin: marshal in, call into the exath library, marshal out.
No evaluator logic lives here. Built with `go build -buildmode=c-shared`.

Angle mode crosses the boundary as a plain C int with values fixed by the
spec (Deg=0, Rad=1, Grad=2) -- note this is NOT the same order as
session.AngleMode's internal iota, so modeFromC below is an explicit
mapping, not a cast.
*/
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	double re;
	double im;
	int is_error;
	char *error_msg;
} exath_result;
*/
import "C"

import (
	"unsafe"

	"github.com/exath-lang/exath"
)

const (
	cDeg = 0
	cRad = 1
	cGrad = 2
)

func modeFromC(m C.int) (exath.AngleMode, bool) {
	switch int(m) {
	case cDeg:
		return exath.Deg, true
	case cRad:
		return exath.Rad, true
	case cGrad:
		return exath.Grad, true
	default:
		return exath.Rad, false
	}
}

func okResult(v complex128) C.exath_result {
	return C.exath_result{re: C.double(real(v)), im: C.double(imag(v)), is_error: 0, error_msg: nil}
}

// errMessage builds the heap-owned error string for a result record.
// The wrapper owns this allocation; the caller releases it via
// exath_free_string.
func errMessage(err *exath.Error) *C.char {
	return C.CString(string(err.Kind) + ": " + err.Message)
}

//export exath_evaluate
func exath_evaluate(expr *C.char, mode C.int) C.exath_result {
	m, ok := modeFromC(mode)
	if !ok {
		return C.exath_result{is_error: 1, error_msg: C.CString("unknown angle mode")}
	}
	v, err := exath.Evaluate(C.GoString(expr), m)
	if err != nil {
		return C.exath_result{is_error: 1, error_msg: errMessage(err)}
	}
	return okResult(v)
}

//export exath_is_valid
func exath_is_valid(expr *C.char) C.int {
	if exath.IsValid(C.GoString(expr)) {
		return 1
	}
	return 0
}

//export exath_supported_functions
func exath_supported_functions() *C.char {
	return C.CString(joinComma(exath.SupportedFunctions()))
}

//export exath_free_string
func exath_free_string(p *C.char) {
	C.free(unsafe.Pointer(p))
}

//export exath_session_new
func exath_session_new(mode C.int) C.uintptr_t {
	m, ok := modeFromC(mode)
	if !ok {
		m = exath.Rad
	}
	return C.uintptr_t(registerSession(exath.NewSession(m)))
}

//export exath_session_free
func exath_session_free(handle C.uintptr_t) {
	releaseSession(uintptr(handle))
}

//export exath_session_eval
func exath_session_eval(handle C.uintptr_t, line *C.char) C.exath_result {
	sess, ok := lookupSession(uintptr(handle))
	if !ok {
		return C.exath_result{is_error: 1, error_msg: C.CString("invalid session handle")}
	}
	v, err := sess.Eval(C.GoString(line))
	if err != nil {
		return C.exath_result{is_error: 1, error_msg: errMessage(err)}
	}
	return okResult(v)
}

//export exath_session_var_names
func exath_session_var_names(handle C.uintptr_t) *C.char {
	sess, ok := lookupSession(uintptr(handle))
	if !ok {
		return C.CString("")
	}
	return C.CString(joinComma(sess.VarNames()))
}

//export exath_session_fn_names
func exath_session_fn_names(handle C.uintptr_t) *C.char {
	sess, ok := lookupSession(uintptr(handle))
	if !ok {
		return C.CString("")
	}
	return C.CString(joinComma(sess.FnNames()))
}

//export exath_session_clear_vars
func exath_session_clear_vars(handle C.uintptr_t) {
	if sess, ok := lookupSession(uintptr(handle)); ok {
		sess.ClearVars()
	}
}

//export exath_session_remove_var
func exath_session_remove_var(handle C.uintptr_t, name *C.char) {
	if sess, ok := lookupSession(uintptr(handle)); ok {
		sess.RemoveVar(C.GoString(name))
	}
}

//export exath_session_remove_fn
func exath_session_remove_fn(handle C.uintptr_t, name *C.char) {
	if sess, ok := lookupSession(uintptr(handle)); ok {
		sess.RemoveFunc(C.GoString(name))
	}
}

func joinComma(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}

func main() {}
