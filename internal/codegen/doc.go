// Package codegen turns tool descriptors into wrapper source files.
//
// Pipeline:
//   - Lower: toolspec.Descriptor -> ToolIR (names, flat field list, doc lines).
//   - Renderer: ToolIR -> File, one per tool plus one index file.
//   - Field kinds map one level deep; nested object and array shapes are not
//     recursed into.
//   - Renderers are pure: the same input always yields byte-identical output.
package codegen
