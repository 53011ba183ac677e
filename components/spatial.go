// Package components defines ECS components for the scene.
// Components are plain data; all behavior lives in the systems package.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y, Z float32
}
