package roll

import "github.com/go-gl/mathgl/mgl64"

// Node is a position and rotation record the renderer mounts onto a scene
// node. The cube is drawn as body nested inside pivot.
type Node struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewNode creates an unrotated node at pos
func NewNode(pos mgl64.Vec3) *Node {
	return &Node{Position: pos, Rotation: mgl64.QuatIdent()}
}

// Matrix returns the node's local transform (translate * rotate)
func (n Node) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2]).Mul4(n.Rotation.Mat4())
}

// Compose returns the world transform of child mounted under parent
func Compose(parent, child Node) mgl64.Mat4 {
	return parent.Matrix().Mul4(child.Matrix())
}
