/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package apis defines the public Go-level contracts shared by the dresult
// subsystem.
//
// The goal of this package is to provide *small, composable* types and
// interfaces that other dresult packages can depend on without importing the
// generic Outcome implementation. The outcome kind enumeration, the
// transport-friendly Failure snapshot, the Problem wire document, and the
// Mapper interface all live here so that HTTP adapters, gRPC adapters,
// validation pipelines and business logic can target the same surface.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains enumerations, view types and interfaces.
package apis
