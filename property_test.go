package cairn

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomTree builds a tree from a parent encoding: marker i+1 is attached to
// marker seeds[i] % (i+1). Every marker gets an anchor derived from its seed.
func randomTree(seeds []int) []*Marker {
	nodes := []*Marker{at("0", 0, 0, 0)}
	for i, seed := range seeds {
		m := at("n", float32(seed%97-48), float32(seed%31-15), float32(seed%13-6))
		nodes[seed%(i+1)].Add(m)
		nodes = append(nodes, m)
	}
	return nodes
}

func treeSeeds() gopter.Gen {
	return gen.SliceOfN(40, gen.IntRange(0, 10000))
}

// TestMarkerTreeInvariants uses property-based testing to check tree,
// bounds and display invariants over randomly shaped marker trees.
func TestMarkerTreeInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("flatten lists every marker once with parents first", prop.ForAll(
		func(seeds []int) bool {
			nodes := randomTree(seeds)
			flat := nodes[0].Flatten()
			if len(flat) != len(nodes) {
				return false
			}
			index := make(map[*Marker]int, len(flat))
			for i, m := range flat {
				if _, dup := index[m]; dup {
					return false
				}
				index[m] = i
			}
			for _, m := range flat[1:] {
				if index[m.Parent()] >= index[m] {
					return false
				}
			}
			return true
		},
		treeSeeds(),
	))

	properties.Property("bounds are the tight box of anchored descendants", prop.ForAll(
		func(seeds []int) bool {
			nodes := randomTree(seeds)
			root := nodes[0]
			root.UpdateBounds()
			for _, m := range nodes {
				want := math32.B3Empty()
				for _, d := range m.Flatten() {
					p, _ := d.Position()
					want.ExpandByPoint(p)
				}
				if m.BoundingBox() != want {
					return false
				}
			}
			return true
		},
		treeSeeds(),
	))

	properties.Property("each ancestor hears marker_added once per attached marker", prop.ForAll(
		func(seeds []int, pick int) bool {
			nodes := randomTree(seeds)
			root := nodes[0]
			sub := nodes[1+pick%(len(nodes)-1)]
			parent := sub.Parent()
			parent.Remove(sub)

			fresh := randomTree(seeds[:len(seeds)/2])
			counts := map[*Marker]int{}
			for _, a := range parent.ancestry() {
				a := a
				a.AddEventListener(EventMarkerAdded, func(e Event) {
					if e.Target != a {
						t.Errorf("Target mismatch")
					}
					counts[a]++
				})
			}
			parent.Add(fresh[0])

			for _, a := range parent.ancestry() {
				if counts[a] != len(fresh) {
					return false
				}
			}
			return root.Root() == root
		},
		treeSeeds(),
		gen.IntRange(0, 1000),
	))

	properties.Property("remove disposes the whole subtree", prop.ForAll(
		func(seeds []int, pick int) bool {
			r := newRecordingRenderer()
			nodes := randomTree(seeds)
			nodes[0].Traverse(func(m *Marker) bool {
				m.SetRenderer(r)
				return true
			})
			sub := nodes[1+pick%(len(nodes)-1)]
			subtree := sub.Flatten()
			size := len(subtree)
			before := len(nodes[0].Flatten())

			sub.Parent().Remove(sub)

			if len(r.calls) != size || len(nodes[0].Flatten()) != before-size {
				return false
			}
			for _, m := range subtree {
				if !m.IsDisposed() {
					return false
				}
			}
			return sub.Parent() == nil
		},
		treeSeeds(),
		gen.IntRange(0, 1000),
	))

	properties.Property("collapse shows only the collapsed marker", prop.ForAll(
		func(seeds []int, pick int) bool {
			nodes := randomTree(seeds)
			for _, m := range nodes {
				m.SetDisplay(true)
			}
			target := nodes[pick%len(nodes)]
			target.SetExpanded(false)
			if !target.Display() {
				return false
			}
			for _, d := range target.Descendants() {
				if d.Display() {
					return false
				}
			}
			target.SetExpanded(true)
			return !target.Display()
		},
		treeSeeds(),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
