// Package telephone is the Telephone field type: a phone number stored with
// the region it was entered for.
//
// Value is the immutable value object every read produces. Parsing is
// delegated to a phone.Capability and never fails loudly: input the library
// cannot interpret is kept verbatim in an unparsed state so it can be
// redisplayed and saved, and only Validate reports it.
//
//	n := telephone.NewNormalizer(phone.NewLibrary(), "US")
//	v := n.Normalize(telephone.Structured{CountryCode: "US", RawInput: "(212) 555-0100"})
//	v.DisplayString()           // "+1 212-555-0100"
//	telephone.Validate(v)       // Valid
//	stored, ok := telephone.Serialize(v)
package telephone
