package main

// _version is the version of fielddoc.
// Release builds override it with -ldflags.
var _version = "0.1.0-dev"
