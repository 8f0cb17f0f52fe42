// Package kernel holds value objects shared by every aggregate of the order engine.
package kernel
