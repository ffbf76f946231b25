// Package scrape wires extractors, loaders and publishers into the
// pipeline behind every user action: load the target document, run the
// action, publish the payload and report a status.
package scrape
