// Package status decodes manager status strings and aggregates faults.
//
// Managers report their devices as a comma terminated line such as
// "Doors,OK,FAULT,". Report is the structured form of that line; Parser
// decides whether a raw line reports a fault, treating anything malformed as
// faulty; Aggregator collects the labels of faulty managers into the single
// line sent to the engineer log.
package status
