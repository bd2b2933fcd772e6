/*
Package main provides the warp command line tool which aligns numeric
sequences with Dynamic Time Warping. Usage:

	warp align --seq1 "71,73,75" --seq2 "69,69,73" --pattern case2
	warp align --demo --all-patterns --format mask
	warp batch jobs.yaml --workers 8 --redis localhost:6379
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
