//go:build js && wasm

// Command wasm exports the converter to JavaScript:
//
//	const out = await convert_image(new Uint8Array(buf), "webp");
//	supported_formats(); // ["png", "jpg", "jpeg", "webp", "gif"]
//
// Build with GOOS=js GOARCH=wasm and load through wasm_exec.js.
package main

import (
	"syscall/js"

	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/encoder"
)

func main() {
	js.Global().Set("convert_image", js.FuncOf(convertImage))
	js.Global().Set("supported_formats", js.FuncOf(supportedFormats))
	select {}
}

// convertImage returns a Promise. Conversion runs synchronously; the
// Promise only carries the result or the error message across.
func convertImage(_ js.Value, args []js.Value) any {
	out, errVal := doConvert(args)
	executor := js.FuncOf(func(_ js.Value, p []js.Value) any {
		if errVal.IsUndefined() {
			p[0].Invoke(out)
		} else {
			p[1].Invoke(errVal)
		}
		return nil
	})
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}

func doConvert(args []js.Value) (js.Value, js.Value) {
	if len(args) != 2 {
		return js.Undefined(), newError("TypeError", "convert_image expects (data, file_type)")
	}
	data, fileType := args[0], args[1]
	if !data.InstanceOf(js.Global().Get("Uint8Array")) {
		return js.Undefined(), newError("TypeError", "data must be a Uint8Array")
	}
	if fileType.Type() != js.TypeString {
		return js.Undefined(), newError("TypeError", "file_type must be a string")
	}

	in := make([]byte, data.Length())
	js.CopyBytesToGo(in, data)

	out, err := convert.Convert(in, fileType.String())
	if err != nil {
		return js.Undefined(), newError("Error", err.Error())
	}

	res := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(res, out)
	return res, js.Undefined()
}

func supportedFormats(js.Value, []js.Value) any {
	toks := encoder.Tokens()
	arr := make([]any, len(toks))
	for i, t := range toks {
		arr[i] = t
	}
	return js.ValueOf(arr)
}

func newError(kind, msg string) js.Value {
	return js.Global().Get(kind).New(msg)
}
