// Package config defines the format-agnostic settings model for the
// converter, along with the Loader interface for reading settings from a
// file. The concrete HCL implementation lives in internal/hcladapter.
package config
