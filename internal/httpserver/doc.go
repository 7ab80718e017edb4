// Package httpserver runs the serve mode's HTTP listener.
package httpserver
