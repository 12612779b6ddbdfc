// Package operator defines the operator representations exchanged across the
// tequila pipeline: qubit operators (weighted Pauli strings), fermion
// operators (weighted ladder-operator products), and interaction operators
// (constant plus one- and two-body integral tensors). The package is a data
// model with bookkeeping operations only; fermion-to-qubit transformation
// algorithms live behind the transform.Transform interface and are supplied
// by backends.
package operator
