package meshfile

// FloatsPerVertex is the interleaved layout size: position, uv, normal.
const FloatsPerVertex = 8

// Vertex is one line of the Data section.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
	Normal   [3]float32
}

// Mesh is a parsed model file. Indices are sequential: the file lists
// vertices in triangle order.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Interleaved flattens the vertices into position/uv/normal groups of
// FloatsPerVertex floats, ready for a single vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.UV[0], v.UV[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}
