// Package order contains the order aggregate: the Order root, its Item lines,
// and the Status state machine governing the checkout and fulfillment workflow.
//
// The rules that matter live here: items are mutable only while the order is
// Open, the total is computed exactly once at checkout from the recorded item
// price snapshots, and every status transition is guarded so the workflow can
// neither move backward nor skip a state.
package order
