package compositor

// debugAssertionsEnabled gates the stride compositor's precondition
// check, made once per CompositeStride call, that the first operation's
// source is not none, per the ambient error-handling design: violations panic rather than
// return an error, since they indicate a caller bug rather than a
// runtime condition.
const debugAssertionsEnabled = true
