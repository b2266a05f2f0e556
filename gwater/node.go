package gwater

// Node is the read-only view of the conveyance-network node exchanging flow
// with an aquifer. Implementations belong to the network model; this package
// never mutates the node.
type Node interface {
	InvertElev() float64 // invert elevation [ft]
	Depth() float64      // current water depth above invert [ft]
	Inflow() float64     // current inflow rate [ft³/s]
	Volume() float64     // current stored volume [ft³]
}
