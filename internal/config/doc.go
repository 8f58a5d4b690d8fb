// Package config loads the optional component-derive YAML configuration.
//
// Example:
//
//	framework:
//	  path: component-derive/realm
//	  alias: realm
//	default_field: component
//	suffix: _component.go
//	types: [IpAddressInput]
//
// Every key is optional. Command-line flags override file values, and a
// //realm:component directive on a struct overrides default_field.
package config
