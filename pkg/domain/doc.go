/*
Package domain contains the core domain models for the ratchet engine.

It defines the fundamental entities of the versioned state machine: the
Definition a machine is built from, the Transformer functions that compute
per-state values, the lifecycle events emitted on commits, and the error
taxonomy shared by every layer. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Definition: static machine configuration (initial state, transitions, transformers).
  - Transformer: computes a destination state's value from action arguments.
  - ValueValidator: optional collaborator that vets values before commit.
  - TransitionEvent / ListenerErrorEvent: observability payloads for hooks.
*/
package domain
