/*
Package domain contains the core domain models for the Gantry bridge engine.

It defines the fundamental entities of the instruction protocol: the
Instruction descriptor (id, parameter and output schemas, flags), the
InstructionCall as received from a caller, the Evidence audit artifact, the
Run journal record and the typed Error taxonomy shared by the engine and the
protocol codec. This package is kept free of I/O and persistence concerns,
following Hexagonal Architecture principles.

# Key Entities

  - Instruction: a registered, schema-described operation the engine can execute.
  - InstructionCall: one requested execution, validated against its descriptor.
  - Evidence: an audit artifact (text or PNG) attached to one executed call.
  - Run: the journal record of one executed batch.
  - Error: a typed protocol error (kind + free-text reason).
*/
package domain
