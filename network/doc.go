// Package network freezes a core.Graph into the dense, index-addressed form
// the searches run on.
//
// A Network owns:
//
//   - Node i for every vertex, i assigned in core.Graph insertion order.
//   - Forward arcs (Out) and reverse arcs (In) per node. Undirected edges
//     become two arcs.
//   - Per-node search state: Open and Closed label lists for the split
//     search, Labels for the single-list search, the Heuristic lower bound,
//     a queue Handle and a generation Timestamp.
//   - A generation counter. Engines call NextGeneration at the start of a
//     run and treat a node whose Timestamp differs as undiscovered, so the
//     per-node state never needs a full sweep between sub-searches.
//
// Topology (IDs, arcs, arc costs) is read-only after Build and may be shared.
// Search state belongs to whichever search is currently running: two queries
// must never run concurrently against one Network.
package network
