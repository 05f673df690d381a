// Package gossip implements the membership engine: add and remove
// events travel along chains annotated with authority lists rather
// than flooding the network, and peers discovered dead along the way
// are evicted with a saturated authority list that stops the recovery
// traffic from propagating further.
package gossip
