package main

import "github.com/sh5080/satyavadi-go/pkg/serverless"

func main() {
	serverless.LambdaMain()
}
