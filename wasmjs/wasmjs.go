//go:build js && wasm

/*
File    : exath/wasmjs/wasmjs.go

Package wasmjs is the WebAssembly boundary (spec.md §6 "WebAssembly
wrapper"): it marshals exath results into plain JS objects with re, im,
isComplex, isError, errorMessage fields, and registers the library
surface as global JS functions. Built with GOOS=js GOARCH=wasm.
*/
package main

import (
	"syscall/js"

	"github.com/exath-lang/exath"
)

const realTol = 1e-12

func resultObject(v complex128) js.Value {
	im := imag(v)
	isComplex := im > realTol || im < -realTol
	return js.ValueOf(map[string]any{
		"re":           real(v),
		"im":           im,
		"isComplex":    isComplex,
		"isError":      false,
		"errorMessage": nil,
	})
}

func errorObject(err *exath.Error) js.Value {
	return js.ValueOf(map[string]any{
		"re":           0,
		"im":           0,
		"isComplex":    false,
		"isError":      true,
		"errorMessage": string(err.Kind) + ": " + err.Message,
	})
}

func parseMode(arg js.Value) (exath.AngleMode, bool) {
	if arg.Type() != js.TypeString {
		return exath.Rad, false
	}
	return exath.ParseAngleMode(arg.String())
}

func jsEvaluate(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return errorObject(&exath.Error{Kind: exath.ParseError, Message: "evaluate(expr, mode) requires two arguments"})
	}
	mode, ok := parseMode(args[1])
	if !ok {
		return errorObject(&exath.Error{Kind: exath.ParseError, Message: "unknown angle mode"})
	}
	v, err := exath.Evaluate(args[0].String(), mode)
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func jsIsValid(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return false
	}
	return exath.IsValid(args[0].String())
}

func jsSupportedFunctions(this js.Value, args []js.Value) any {
	names := exath.SupportedFunctions()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return js.ValueOf(out)
}

// sessions holds live *exath.Session values keyed by an opaque integer
// handle, mirroring the abi package's handle table -- JS cannot hold a Go
// pointer directly.
var sessions = map[int]*exath.Session{}
var nextHandle int

func jsSessionNew(this js.Value, args []js.Value) any {
	mode := exath.Rad
	if len(args) > 0 {
		if m, ok := parseMode(args[0]); ok {
			mode = m
		}
	}
	nextHandle++
	sessions[nextHandle] = exath.NewSession(mode)
	return nextHandle
}

func jsSessionEval(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return errorObject(&exath.Error{Kind: exath.ParseError, Message: "sessionEval(handle, line) requires two arguments"})
	}
	sess, ok := sessions[args[0].Int()]
	if !ok {
		return errorObject(&exath.Error{Kind: exath.ParseError, Message: "invalid session handle"})
	}
	v, err := sess.Eval(args[1].String())
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func jsSessionVarNames(this js.Value, args []js.Value) any {
	sess, ok := sessions[args[0].Int()]
	if !ok {
		return js.ValueOf([]any{})
	}
	names := sess.VarNames()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return js.ValueOf(out)
}

func jsSessionFnNames(this js.Value, args []js.Value) any {
	sess, ok := sessions[args[0].Int()]
	if !ok {
		return js.ValueOf([]any{})
	}
	names := sess.FnNames()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return js.ValueOf(out)
}

func jsSessionClearVars(this js.Value, args []js.Value) any {
	if sess, ok := sessions[args[0].Int()]; ok {
		sess.ClearVars()
	}
	return nil
}

func jsSessionRemoveVar(this js.Value, args []js.Value) any {
	if sess, ok := sessions[args[0].Int()]; ok && len(args) > 1 {
		sess.RemoveVar(args[1].String())
	}
	return nil
}

func jsSessionRemoveFn(this js.Value, args []js.Value) any {
	if sess, ok := sessions[args[0].Int()]; ok && len(args) > 1 {
		sess.RemoveFunc(args[1].String())
	}
	return nil
}

func jsDeriv(this js.Value, args []js.Value) any {
	mode, _ := parseMode(args[3])
	v, err := exath.Deriv(args[0].String(), args[1].String(), args[2].Float(), mode)
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func jsIntegrate(this js.Value, args []js.Value) any {
	mode, _ := parseMode(args[4])
	v, err := exath.Integrate(args[0].String(), args[1].String(), args[2].Float(), args[3].Float(), mode)
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func jsSum(this js.Value, args []js.Value) any {
	mode, _ := parseMode(args[4])
	v, err := exath.Sum(args[0].String(), args[1].String(), args[2].Float(), args[3].Float(), mode)
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func jsProd(this js.Value, args []js.Value) any {
	mode, _ := parseMode(args[4])
	v, err := exath.Prod(args[0].String(), args[1].String(), args[2].Float(), args[3].Float(), mode)
	if err != nil {
		return errorObject(err)
	}
	return resultObject(v)
}

func registerGlobals() {
	exports := map[string]any{
		"evaluate":            js.FuncOf(jsEvaluate),
		"isValid":             js.FuncOf(jsIsValid),
		"supportedFunctions":  js.FuncOf(jsSupportedFunctions),
		"sessionNew":          js.FuncOf(jsSessionNew),
		"sessionEval":         js.FuncOf(jsSessionEval),
		"sessionVarNames":     js.FuncOf(jsSessionVarNames),
		"sessionFnNames":      js.FuncOf(jsSessionFnNames),
		"sessionClearVars":    js.FuncOf(jsSessionClearVars),
		"sessionRemoveVar":    js.FuncOf(jsSessionRemoveVar),
		"sessionRemoveFn":     js.FuncOf(jsSessionRemoveFn),
		"deriv":               js.FuncOf(jsDeriv),
		"integrate":           js.FuncOf(jsIntegrate),
		"sum":                 js.FuncOf(jsSum),
		"prod":                js.FuncOf(jsProd),
	}
	js.Global().Set("exath", js.ValueOf(exports))
}

func main() {
	registerGlobals()
	select {}
}
