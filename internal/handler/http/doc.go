// Package http implements the control API of the consumer.
//
// It exposes route wiring, request handlers, and middleware used to observe
// and drive the listener lifecycle over REST. Cross-cutting concerns such as
// request tracing, access logging, and response compression are handled in
// this package before requests are delegated to the service layer.
package http
