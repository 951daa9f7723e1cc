// Package goimpute provides missing-value imputation for 2-D numeric data,
// designed for data-cleaning stages of Go machine learning pipelines.
//
// goimpute offers a scikit-learn-like API that makes it easy for engineers
// familiar with Python's SimpleImputer to fill missing cells in Go.
//
// # Features
//
// - Column-wise mean, median and mode imputation over gonum matrices
// - scikit-learn-like API: Fit / Transform / FitTransform
// - Robust Error Handling: structured errors with stack traces
// - CPU-parallel fitting for wide matrices
//
// # Installation
//
// Install goimpute using go get:
//
//	go get github.com/YuminosukeSato/goimpute
//
// # Quick Start
//
// Here's a simple example of mean imputation:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "math"
//
//	    "github.com/YuminosukeSato/goimpute/impute"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    nan := math.NaN()
//	    X := mat.NewDense(4, 2, []float64{
//	        1, 10,
//	        2, nan,
//	        nan, 30,
//	        4, 40,
//	    })
//
//	    imputer, err := impute.NewSimpleImputer("mean")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    filled, err := imputer.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(filled))
//	}
//
// The missing marker is IEEE NaN. Transform never mutates its input; it
// returns a newly allocated matrix of the same shape.
package goimpute
