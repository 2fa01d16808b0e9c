package main

import "github.com/sh5080/ocr-proxy/pkg/serverless"

func main() {
	serverless.CloudRunMain()
}
