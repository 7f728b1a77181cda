//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const siteIndex = `{"pages":[
	{"title":"Hello World","summary":"A <em>first</em> post","section":"blog","date":"2024-01-01","permalink":"/hello/"},
	{"title":"Weather station","summary":"Sensors on the roof","section":"projects","date":"2023-06-10","permalink":"/projects/weather/"},
	{"title":"About","summary":"Who writes here","permalink":"/about/"}
]}`

// CreateWorkspace creates an isolated directory holding index.json
func (tf *TUITestFramework) CreateWorkspace() (string, error) {
	dir := tf.t.TempDir()
	tf.workspace = dir
	return filepath.Join(dir, "index.json"), os.WriteFile(filepath.Join(dir, "index.json"), []byte(siteIndex), 0644)
}

// ReadLog returns the application log
func (tf *TUITestFramework) ReadLog() string {
	data, _ := os.ReadFile(filepath.Join(tf.workspace, "sitesearch.log"))
	return string(data)
}
