// Package schema defines the declarative field model widget types are
// described with, the compose directives that shape it (addFields,
// removeFields, arrangeFields), and the Compiler/Converter/Joiner seams the
// widget pipeline drives. Reference implementations of those seams live under
// internal/fields and internal/join; advanced callers can inject their own.
//
// Field names _id and type are reserved: they collide with the identity
// properties every widget record carries, and composing a schema that uses
// either is a configuration error surfaced at startup.
package schema
