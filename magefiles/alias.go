//go:build mage

package main

var Aliases = map[string]any{
	"test":  Test.Unit,
	"build": Build.Binary,
	"lint":  Lint.All,
	"scan":  Lint.Vulncheck,
}
