// Command assetd serves a bundled assets directory over HTTP so datakeep's
// fetch mode (bundled_mode = "fetch") can be exercised against packed assets
// during development.
//
// Usage:
//
//	assetd --dir ./assets --addr 127.0.0.1:8080 --prefix /assets/
package main
