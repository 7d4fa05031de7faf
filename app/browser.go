package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/storage"
)

// browserKV stores values in window.localStorage, the same surface the
// document, the auth token and the pending marker always lived in.
type browserKV struct{}

var _ storage.KV = browserKV{}

func (browserKV) Get(key string) (string, bool) {
	v := app.Window().Get("localStorage").Call("getItem", key)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (browserKV) Set(key, value string) {
	app.Window().Get("localStorage").Call("setItem", key, value)
}

func (browserKV) Del(key string) {
	app.Window().Get("localStorage").Call("removeItem", key)
}

// browserDialogs maps the Dialogs capability onto the blocking window
// dialogs.
type browserDialogs struct{}

func (browserDialogs) Alert(msg string) {
	app.Window().Call("alert", msg)
}

func (browserDialogs) Confirm(msg string) bool {
	return app.Window().Call("confirm", msg).Bool()
}

func (browserDialogs) Prompt(msg, def string) (string, bool) {
	v := app.Window().Call("prompt", msg, def)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// inputValue reads the current value of an input element.
func inputValue(id string) string {
	el := app.Window().GetElementByID(id)
	if !el.Truthy() {
		return ""
	}
	return el.Get("value").String()
}
