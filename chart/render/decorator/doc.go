// Decorators shape how a TableRenderer presents a grid.
//
// A renderer accepts any number of Class and Style decorators, applied in
// the order they were added, plus exactly one Labeler and one Purl
// decorator. Every decorator only has to implement the capability it is
// added for. The rest is detected with type assertions:
//
// - LabelClass contributes classes to the label cells of a row or column.
//
// - Registrar contributes stylesheet rules; the renderer registers them
// once per decorator type, however many renderers use the decorator.
//
// Decorators are pure functions of their inputs. Two renders of the same
// grid with the same decorators produce the same classes and styles.
package decorator
