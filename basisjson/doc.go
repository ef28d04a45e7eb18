//Package basisjson implements the serialization and unserialization of
//basis evaluation jobs, so an external program, which can be written in
//any language able to produce and read JSON, can send shells, points and
//options to a goBasis program and later collect the evaluated arrays,
//for instance, via UNIX pipes.
//
//A request is a stream of JSON values: one Options value, then one Shell
//value per shell, then one Coords value with all the points (in bohr), and
//then, if Options.Orbitals is larger than 0, one Coords value per row of
//the transformation matrix.
package basisjson
