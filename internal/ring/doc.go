// Package ring implements a weighted consistent-hash ring. Keys and
// nodes are hashed onto the same circle; a key is owned by the first
// node encountered clockwise from its position. Virtual keys smooth
// the distribution, and the hex-digest short circuit in GenKey keeps
// positions interoperable with clients that pre-hash their keys.
package ring
