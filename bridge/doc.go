// Package bridge provides member tables for host types.
//
// A host instance is opaque: the SDK reaches its members through a Table
// registered for its host type. A Table maps member names to getter, setter and
// method handlers built once per type. Tables are immutable after NewTable and
// every handler is wrapped by the table's middleware chain.
//
// Example usage:
//
//	nodeTable, err := bridge.NewTable("RobotNode",
//	    bridge.WithMiddleware(bridge.PanicRecoveryMiddleware()),
//	    bridge.ReadOnly("Number", func(_ context.Context, n *Node) (int, error) {
//	        return n.number, nil
//	    }),
//	    bridge.Property("X",
//	        func(_ context.Context, n *Node) (float64, error) { return n.x, nil },
//	        func(_ context.Context, n *Node, v float64) error { n.x = v; return nil },
//	    ),
//	)
//
// Tables are looked up by host type through a Catalog.
package bridge
