package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

// LayoutNodes is the entry point to the recursive layout algorithm: it
// turns a sequence of AST nodes into a finalized Layout under the given
// Settings.
func LayoutNodes(nodes []mathast.Node, settings Settings) (*Layout, error) {
	return layoutRecurse(nodes, settings, mathast.Transparent)
}

// layoutRecurse walks nodes left to right, inserting atom-spacing kerns
// between each pair, applying the binary-coercion rule, and dispatching
// every node but StyleNode (which mutates settings in place for the
// remainder of the sequence instead of producing a box).
func layoutRecurse(nodes []mathast.Node, settings Settings, parentNext mathast.AtomType) (*Layout, error) {
	l := NewLayout()
	prev := mathast.Transparent

	for idx, node := range nodes {
		var next mathast.AtomType
		if idx+1 < len(nodes) {
			next = nodes[idx+1].AtomType()
		} else {
			next = parentNext
		}

		current := node.AtomType()
		if current.Equal(mathast.Binary) {
			if _, isOp := prev.IsOperator(); isOp {
				current = mathast.Alpha
			} else if prev.Equal(mathast.Transparent) || prev.Equal(mathast.Binary) ||
				prev.Equal(mathast.Relation) || prev.Equal(mathast.Open) ||
				prev.Equal(mathast.Punctuation) {
				current = mathast.Alpha
			} else if next.Equal(mathast.Relation) || next.Equal(mathast.Close) ||
				next.Equal(mathast.Punctuation) {
				current = mathast.Alpha
			}
		}

		sp := AtomSpace(prev, current, settings.Style)
		if sp != SpacingNone {
			l.AddNode(kernHorz(scaledEm(settings, sp.ToEm())))
		}

		prev = current

		if sty, ok := node.(*mathast.StyleNode); ok {
			settings.Style = sty.Style
			continue
		}

		if err := dispatch(l, settings, node, next); err != nil {
			return nil, err
		}
	}

	return l.Finalize(), nil
}

// layoutNode lays out a single node in isolation, used for a Scripts base
// (which never needs the spacing/binary-coercion machinery applied to a
// lone element).
func layoutNode(node mathast.Node, settings Settings) (*Layout, error) {
	l := NewLayout()
	if err := dispatch(l, settings, node, mathast.Transparent); err != nil {
		return nil, err
	}
	return l.Finalize(), nil
}

// dispatch routes a single node to its handler, appending the resulting
// box(es) to l.
func dispatch(l *Layout, settings Settings, node mathast.Node, next mathast.AtomType) error {
	switch n := node.(type) {
	case *mathast.SymbolNode:
		return layoutSymbol(l, n.Symbol, settings)
	case *mathast.Scripts:
		return layoutScripts(l, n, settings)
	case *mathast.Radical:
		return layoutRadical(l, n, settings)
	case *mathast.Delimited:
		return layoutDelimited(l, n, settings)
	case *mathast.Accent:
		return layoutAccent(l, n, settings)
	case *mathast.GenFraction:
		return layoutFrac(l, n, settings)
	case *mathast.Stack:
		return layoutSubstack(l, n, settings)
	case *mathast.Array:
		return layoutArray(l, n, settings)

	case *mathast.AtomChange:
		inner, err := LayoutNodes(n.Inner, settings)
		if err != nil {
			return err
		}
		l.AddNode(inner.AsNode())
		return nil

	case *mathast.Group:
		inner, err := LayoutNodes(n.Inner, settings)
		if err != nil {
			return err
		}
		l.AddNode(inner.AsNode())
		return nil

	case *mathast.Rule:
		l.AddNode(ruleAsLayout(settings, n.Width, n.Height))
		return nil

	case *mathast.Kerning:
		l.AddNode(kernHorz(scaledUnit(settings, n.Amount)))
		return nil

	case *mathast.Color:
		inner, err := layoutRecurse(n.Inner, settings, next)
		if err != nil {
			return err
		}
		l.AddNode(colorNode(inner, n.RGBA))
		return nil

	default:
		// StyleNode and Extend are intentionally unhandled here: StyleNode
		// is consumed by layoutRecurse before reaching dispatch, and
		// Extend has no layout of its own.
		return nil
	}
}

// layoutSymbol lays out a single symbol: operators may need to grow into a
// larger, vertically centered glyph, everything else is a plain glyph.
func layoutSymbol(l *Layout, sym mathast.Symbol, settings Settings) error {
	if _, isOp := sym.AtomType.IsOperator(); isOp {
		return layoutLargeOp(l, sym, settings)
	}
	g, err := settings.Ctx.Glyph(sym.StyledCodepoint())
	if err != nil {
		return err
	}
	l.AddNode(glyphAsLayout(settings, g))
	return nil
}

// layoutLargeOp lays out an operator symbol, growing it to the font's
// configured minimum display-operator height and centering it on the math
// axis when the ambient style is large enough to display it that way.
func layoutLargeOp(l *Layout, sym mathast.Symbol, settings Settings) error {
	cp := sym.StyledCodepoint()
	glyph, err := settings.Ctx.Glyph(cp)
	if err != nil {
		return err
	}

	if settings.Style > mathast.Text {
		axisOffset := scaledEm(settings, settings.Ctx.Constants.AxisHeight)
		targetHeight := settings.Ctx.UnitsPerEm.Inv().Apply(settings.Ctx.Constants.DisplayOperatorMinHeight)
		variant, err := settings.Ctx.VertVariant(cp, targetHeight)
		if err != nil {
			return err
		}
		largeop, err := variantAsLayout(settings, variant)
		if err != nil {
			return err
		}
		shift := (largeop.Height + largeop.Depth).Scale(0.5) - axisOffset
		l.AddNode(vboxOffset(shift, largeop))
	} else {
		l.AddNode(glyphAsLayout(settings, glyph))
	}
	return nil
}

// layoutAccent places an accent symbol over (or under) a nucleus, aligning
// the attachment point of each against the other.
func layoutAccent(l *Layout, acc *mathast.Accent, settings Settings) error {
	base, err := LayoutNodes(acc.Nucleus, settings.Cramped())
	if err != nil {
		return err
	}

	accentVariant, err := settings.Ctx.HorzVariant(acc.Symbol.Codepoint, settings.ToFont(base.Width))
	if err != nil {
		return err
	}
	accentNode, err := variantAsLayout(settings, accentVariant)
	if err != nil {
		return err
	}

	var baseOffset dimen.Px
	if sym, ok := base.IsSymbol(); ok {
		glyph, err := settings.Ctx.GlyphFromGID(sym.GID)
		if err != nil {
			return err
		}
		if glyph.Attachment != 0 {
			baseOffset = scaledFont(settings, glyph.Attachment)
		} else {
			offset := (glyph.Advance + glyph.Italics).Scale(0.5)
			baseOffset = scaledFont(settings, offset)
		}
	} else {
		baseOffset = base.Width.Scale(0.5)
	}

	var accOffset dimen.Px
	if accentVariant.IsReplacement() {
		glyph, err := settings.Ctx.GlyphFromGID(accentVariant.Replacement)
		if err != nil {
			return err
		}
		if glyph.Attachment != 0 {
			accOffset = scaledFont(settings, glyph.Attachment)
		} else {
			// Glyphs with no attachment point also need to account for
			// combining glyphs: center the accent on its own bbox.
			offset := (glyph.BBoxXMax + glyph.BBoxXMin).Scale(0.5)
			accOffset = scaledFont(settings, offset)
		}
	} else {
		accOffset = accentNode.Width.Scale(0.5)
	}

	// Never place the accent further than it would sit over an 'x' in the
	// current style.
	delta := -dimen.MinPx(base.Height, scaledEm(settings, settings.Ctx.Constants.AccentBaseHeight))

	l.AddNode(vboxOf(
		hboxOf(kernHorz(baseOffset-accOffset), accentNode),
		kernVert(delta),
		base.AsNode(),
	))
	return nil
}

// layoutDelimited lays out an expression flanked by left/right delimiters,
// growing the delimiters to match the expression's extent once it exceeds
// a minimum height; '.' denotes a null (invisible) delimiter.
func layoutDelimited(l *Layout, delim *mathast.Delimited, settings Settings) error {
	innerLayout, err := LayoutNodes(delim.Inner, settings)
	if err != nil {
		return err
	}
	inner := innerLayout.AsNode()

	minHeight := rawEm(settings, settings.Ctx.Constants.DelimitedSubFormulaMinHeight)
	nullDelimiterSpace := rawEm(settings, settings.Ctx.Constants.NullDelimiterSpace)

	grown := dimen.MaxPx(inner.Height, -inner.Depth) > minHeight.Scale(0.5)

	var axis, clearance dimen.Px
	if grown {
		axis = rawEm(settings, settings.Ctx.Constants.AxisHeight)
		clearance = dimen.MaxPx(inner.Height-axis, axis-inner.Depth).Scale(2.0)
		clearance = dimen.MaxPx(
			clearance.Scale(settings.Ctx.Constants.DelimiterFactor),
			inner.Height-inner.Depth-rawEm(settings, settings.Ctx.Constants.DelimiterShortFall),
		)
	}

	delimNode := func(sym mathast.Symbol) (LayoutNode, error) {
		if sym.Codepoint == '.' {
			return kernHorz(nullDelimiterSpace), nil
		}
		if !grown {
			g, err := settings.Ctx.Glyph(sym.Codepoint)
			if err != nil {
				return LayoutNode{}, err
			}
			return glyphAsLayout(settings, g), nil
		}
		variant, err := settings.Ctx.VertVariant(sym.Codepoint, settings.ToFont(clearance))
		if err != nil {
			return LayoutNode{}, err
		}
		node, err := variantAsLayout(settings, variant)
		if err != nil {
			return LayoutNode{}, err
		}
		return node.CenterOnAxis(axis), nil
	}

	left, err := delimNode(delim.Left)
	if err != nil {
		return err
	}
	right, err := delimNode(delim.Right)
	if err != nil {
		return err
	}

	l.AddNode(left)
	l.AddNode(inner)
	l.AddNode(right)
	return nil
}

// layoutScripts lays out a base with an optional superscript and/or
// subscript, computing vertical placement from font constants plus, when
// both base and script resolve to plain symbols, MATH-table kerning
// corrections.
func layoutScripts(l *Layout, scripts *mathast.Scripts, settings Settings) error {
	var base *Layout
	var err error
	if scripts.Base != nil {
		base, err = layoutNode(scripts.Base, settings)
		if err != nil {
			return err
		}
	} else {
		base = NewLayout()
	}

	var sup *Layout
	if scripts.Superscript != nil {
		sup, err = LayoutNodes(scripts.Superscript, settings.SuperscriptVariant())
		if err != nil {
			return err
		}
	} else {
		sup = NewLayout()
	}

	var sub *Layout
	if scripts.Subscript != nil {
		sub, err = LayoutNodes(scripts.Subscript, settings.SubscriptVariant())
		if err != nil {
			return err
		}
	} else {
		sub = NewLayout()
	}

	if scripts.Base != nil {
		if limits, isOp := scripts.Base.AtomType().IsOperator(); isOp && limits {
			return layoutOperatorLimits(l, base, sup, sub, settings)
		}
	}

	var adjustUp, adjustDown, supKern, subKern dimen.Px

	if scripts.Superscript != nil {
		if settings.Style.IsCramped() {
			adjustUp = scaledEm(settings, settings.Ctx.Constants.SuperscriptShiftUpCramped)
		} else {
			adjustUp = scaledEm(settings, settings.Ctx.Constants.SuperscriptShiftUp)
		}

		height := base.Height
		if scripts.Base != nil {
			if limits, isOp := scripts.Base.AtomType().IsOperator(); !(isOp && !limits) {
				if acc, ok := scripts.Base.(*mathast.Accent); ok {
					if sym, ok2 := mathast.IsSymbol(acc.Nucleus); ok2 {
						g, err := settings.Ctx.Glyph(sym.Codepoint)
						if err != nil {
							return err
						}
						height = scaledFont(settings, g.Height())
					}
				} else if baseSym, ok := base.IsSymbol(); ok {
					if supSym, ok2 := sup.IsSymbol(); ok2 {
						bg, err := settings.Ctx.GlyphFromGID(baseSym.GID)
						if err != nil {
							return err
						}
						sg, err := settings.Ctx.GlyphFromGID(supSym.GID)
						if err != nil {
							return err
						}
						kern := scaledFont(settings, mathfont.SuperscriptKern(bg, sg, bg.Height(), settings.ToFont(adjustUp)))
						supKern = baseSym.Italics + kern
					} else {
						supKern = baseSym.Italics
					}
				}
			}
		}

		dropMax := scaledEm(settings, settings.Ctx.Constants.SuperscriptBaselineDropMax)
		adjustUp = dimen.MaxPx(adjustUp, dimen.MaxPx(
			height-dropMax,
			scaledEm(settings, settings.Ctx.Constants.SuperscriptBottomMin)-sup.Depth,
		))
	}

	if scripts.Subscript != nil {
		adjustDown = dimen.MaxPx(
			scaledEm(settings, settings.Ctx.Constants.SubscriptShiftDown),
			dimen.MaxPx(
				sub.Height-scaledEm(settings, settings.Ctx.Constants.SubscriptTopMax),
				scaledEm(settings, settings.Ctx.Constants.SubscriptBaselineDropMin)-base.Depth,
			),
		)

		if scripts.Base != nil {
			if baseSym, ok := base.IsSymbol(); ok {
				if limits, isOp := scripts.Base.AtomType().IsOperator(); isOp && !limits {
					bg, err := settings.Ctx.GlyphFromGID(baseSym.GID)
					if err != nil {
						return err
					}
					subKern = -scaledFont(settings, bg.Italics)
				}
			}

			subSym, subOk := sub.IsSymbol()
			baseSym, baseOk := base.IsSymbol()
			if subOk && baseOk {
				bg, err := settings.Ctx.GlyphFromGID(baseSym.GID)
				if err != nil {
					return err
				}
				sg, err := settings.Ctx.GlyphFromGID(subSym.GID)
				if err != nil {
					return err
				}
				subKern += scaledFont(settings, mathfont.SubscriptKern(bg, sg, bg.Depth(), settings.ToFont(adjustDown)))
			}
		}
	}

	if scripts.Subscript != nil && scripts.Superscript != nil {
		supBot := adjustUp + sup.Depth
		subTop := sub.Height - adjustDown
		gapMin := scaledEm(settings, settings.Ctx.Constants.SubSuperscriptGapMin)
		if supBot-subTop < gapMin {
			adjust := (gapMin - supBot + subTop).Scale(0.5)
			adjustUp += adjust
			adjustDown += adjust
		}
	}

	contents := NewVBox()
	if scripts.Superscript != nil {
		if supKern != 0 {
			sup.Contents = append([]LayoutNode{kernHorz(supKern)}, sup.Contents...)
			sup.Width += supKern
		}

		correctedAdjust := adjustUp - sub.Height + adjustDown
		contents.AddNode(sup.AsNode())
		contents.AddNode(kernVert(correctedAdjust))
	}

	contents.SetOffset(adjustDown)
	if scripts.Subscript != nil {
		if subKern != 0 {
			sub.Contents = append([]LayoutNode{kernHorz(subKern)}, sub.Contents...)
			sub.Width += subKern
		}
		contents.AddNode(sub.AsNode())
	}

	l.AddNode(base.AsNode())
	l.AddNode(contents.Build())
	return nil
}

// layoutOperatorLimits lays out a limits-taking operator (e.g. \sum in
// display style) with its scripts centered above and below the base rather
// than side-set.
func layoutOperatorLimits(l *Layout, base, sup, sub *Layout, settings Settings) error {
	var delta dimen.Px
	if gly, ok := base.IsSymbol(); ok {
		delta = gly.Italics
	}

	supKern := dimen.MaxPx(
		scaledEm(settings, settings.Ctx.Constants.UpperLimitBaselineRiseMin),
		scaledEm(settings, settings.Ctx.Constants.UpperLimitGapMin)-sup.Depth,
	)
	subKern := dimen.MaxPx(
		scaledEm(settings, settings.Ctx.Constants.LowerLimitGapMin),
		scaledEm(settings, settings.Ctx.Constants.LowerLimitBaselineDropMin)-sub.Height,
	) - base.Depth

	offset := sub.Height + subKern

	width := dimen.MaxPx(base.Width, dimen.MaxPx(
		sub.Width+delta.Scale(0.5),
		sup.Width+delta.Scale(0.5),
	))

	l.AddNode(vboxOffset(offset,
		hboxAligned(Centered(sup.Width), width, kernHorz(delta.Scale(0.5)), sup.AsNode()),
		kernVert(supKern),
		base.Centered(width).AsNode(),
		kernVert(subKern),
		hboxAligned(Centered(sub.Width), width, kernHorz(-delta.Scale(0.5)), sub.AsNode()),
	))
	return nil
}

// layoutFrac lays out a generalized fraction: numerator over denominator,
// separated by a rule, optionally flanked by delimiters.
func layoutFrac(l *Layout, frac *mathast.GenFraction, settings Settings) error {
	switch frac.Style {
	case mathast.FractionDisplay:
		settings = settings.WithDisplay()
	case mathast.FractionText:
		settings = settings.WithText()
	}

	isDefault, isNone, unit := frac.BarThickness.Kind()
	var bar dimen.Px
	switch {
	case isDefault:
		bar = scaledEm(settings, settings.Ctx.Constants.FractionRuleThickness)
	case isNone:
		bar = 0
	default:
		bar = scaledUnit(settings, unit)
	}

	n, err := LayoutNodes(frac.Numerator, settings.Numerator())
	if err != nil {
		return err
	}
	d, err := LayoutNodes(frac.Denominator, settings.Denominator())
	if err != nil {
		return err
	}

	if n.Width > d.Width {
		d.Alignment = Centered(d.Width)
		d.Width = n.Width
	} else {
		n.Alignment = Centered(n.Width)
		n.Width = d.Width
	}

	numer := n.AsNode()
	denom := d.AsNode()

	axis := scaledEm(settings, settings.Ctx.Constants.AxisHeight)
	var shiftUp, shiftDown, gapNum, gapDenom dimen.Px
	if settings.Style > mathast.Text {
		shiftUp = scaledEm(settings, settings.Ctx.Constants.FractionNumeratorDisplayStyleShiftUp)
		shiftDown = scaledEm(settings, settings.Ctx.Constants.FractionDenominatorDisplayStyleShiftDown)
		gapNum = scaledEm(settings, settings.Ctx.Constants.FractionNumDisplayStyleGapMin)
		gapDenom = scaledEm(settings, settings.Ctx.Constants.FractionDenomDisplayStyleGapMin)
	} else {
		shiftUp = scaledEm(settings, settings.Ctx.Constants.FractionNumeratorShiftUp)
		shiftDown = scaledEm(settings, settings.Ctx.Constants.FractionDenominatorShiftDown)
		gapNum = scaledEm(settings, settings.Ctx.Constants.FractionNumeratorGapMin)
		gapDenom = scaledEm(settings, settings.Ctx.Constants.FractionDenominatorGapMin)
	}

	kernNum := dimen.MaxPx(shiftUp-axis-bar.Scale(0.5), gapNum-numer.Depth)
	kernDen := dimen.MaxPx(shiftDown+axis-denom.Height-bar.Scale(0.5), gapDenom)
	offset := denom.Height + kernDen + bar.Scale(0.5) - axis

	width := numer.Width
	inner := vboxOffset(offset,
		numer,
		kernVert(kernNum),
		ruleNode(width, bar),
		kernVert(kernDen),
		denom,
	)

	nullDelimiterSpace := rawEm(settings, settings.Ctx.Constants.NullDelimiterSpace)
	rawAxis := rawEm(settings, settings.Ctx.Constants.AxisHeight)

	delimNode := func(sym *mathast.Symbol) (LayoutNode, error) {
		if sym == nil {
			return kernHorz(nullDelimiterSpace), nil
		}
		clearance := dimen.MaxPx(inner.Height-rawAxis, rawAxis-inner.Depth).Scale(2.0)
		clearance = dimen.MaxPx(clearance, rawEm(settings, settings.Ctx.Constants.DelimitedSubFormulaMinHeight))

		variant, err := settings.Ctx.VertVariant(sym.Codepoint, settings.ToFont(clearance))
		if err != nil {
			return LayoutNode{}, err
		}
		node, err := variantAsLayout(settings, variant)
		if err != nil {
			return LayoutNode{}, err
		}
		return node.CenterOnAxis(scaledEm(settings, settings.Ctx.Constants.AxisHeight)), nil
	}

	left, err := delimNode(frac.LeftDelimiter)
	if err != nil {
		return err
	}
	right, err := delimNode(frac.RightDelimiter)
	if err != nil {
		return err
	}

	l.AddNode(left)
	l.AddNode(inner)
	l.AddNode(right)
	return nil
}

// layoutRadical lays out a square root: the radicand under a grown '√'
// glyph with a rule spanning its width, per TeXbook rule 11.
func layoutRadical(l *Layout, rad *mathast.Radical, settings Settings) error {
	contentsLayout, err := LayoutNodes(rad.Inner, settings.Cramped())
	if err != nil {
		return err
	}
	contents := contentsLayout.AsNode()

	var gap dimen.Px
	if settings.Style >= mathast.Display {
		gap = scaledEm(settings, settings.Ctx.Constants.RadicalDisplayStyleVerticalGap)
	} else {
		gap = scaledEm(settings, settings.Ctx.Constants.RadicalVerticalGap)
	}

	ruleThickness := scaledEm(settings, settings.Ctx.Constants.RadicalRuleThickness)
	ruleAscender := scaledEm(settings, settings.Ctx.Constants.RadicalExtraAscender)

	innerHeight := (contents.Height - contents.Depth) + gap + ruleThickness
	targetHeight := settings.ToFont(innerHeight)
	variant, err := settings.Ctx.VertVariant('√', targetHeight)
	if err != nil {
		return err
	}
	sqrt, err := variantAsLayout(settings, variant)
	if err != nil {
		return err
	}

	delta := (sqrt.Height - sqrt.Depth - innerHeight).Scale(0.5) + ruleThickness
	gap = dimen.MaxPx(delta, gap)

	offset := ruleThickness + gap + contents.Height
	offset = sqrt.Height - offset

	topPadding := ruleAscender - ruleThickness

	l.AddNode(vboxOffset(offset, sqrt))
	l.AddNode(vboxOf(
		kernVert(topPadding),
		ruleNode(contents.Width, ruleThickness),
		kernVert(gap),
		contents,
	))
	return nil
}

// layoutSubstack lays out a vertical stack of lines (as in \substack),
// widening every line to the widest and vertically centering the whole
// stack on the math axis.
func layoutSubstack(l *Layout, stack *mathast.Stack, settings Settings) error {
	if len(stack.Lines) == 0 {
		return nil
	}

	lines := make([]*Layout, len(stack.Lines))
	var widest dimen.Px
	widestIdx := 0
	for i, line := range stack.Lines {
		lay, err := LayoutNodes(line, settings)
		if err != nil {
			return err
		}
		if lay.Width > widest {
			widest = lay.Width
			widestIdx = i
		}
		lines[i] = lay
	}

	for i, line := range lines {
		if i == widestIdx {
			continue
		}
		line.Alignment = Centered(line.Width)
		line.Width = widest
	}

	var gapMin dimen.Px
	if settings.Style > mathast.Text {
		gapMin = scaledEm(settings, settings.Ctx.Constants.StackDisplayStyleGapMin)
	} else {
		gapMin = scaledEm(settings, settings.Ctx.Constants.StackGapMin)
	}

	var gapTry dimen.Px
	if settings.Style > mathast.Text {
		gapTry = scaledEm(settings,
			settings.Ctx.Constants.StackTopDisplayStyleShiftUp-
				settings.Ctx.Constants.AxisHeight+
				settings.Ctx.Constants.StackBottomShiftDown-
				settings.Ctx.Constants.AccentBaseHeight*2.0)
	} else {
		gapTry = scaledEm(settings,
			settings.Ctx.Constants.StackTopShiftUp-
				settings.Ctx.Constants.AxisHeight+
				settings.Ctx.Constants.StackBottomShiftDown-
				settings.Ctx.Constants.AccentBaseHeight*2.0)
	}

	vbox := NewVBox()
	length := len(lines)
	for idx, line := range lines {
		prev := line.Depth
		vbox.AddNode(line.AsNode())

		// Note: idx < length always holds (idx ranges over the full slice),
		// so a gap is appended after every line including the last.
		if idx < length {
			gap := dimen.MaxPx(gapMin, gapTry-prev)
			vbox.AddNode(kernVert(gap))
		}
	}

	built := vbox.Build()
	offset := (built.Height + built.Depth).Scale(0.5) - scaledEm(settings, settings.Ctx.Constants.AxisHeight)

	vbox2 := NewVBox()
	vbox2.AddNode(built)
	vbox2.SetOffset(offset)
	l.AddNode(vbox2.Build())
	return nil
}

// layoutArray lays out a grid environment (matrices and the like): every
// row padded to strut height/depth, columns vboxed independently, the whole
// body optionally flanked by grown delimiters and centered on the axis.
func layoutArray(l *Layout, array *mathast.Array, settings Settings) error {
	strutHeight := rawEm(settings, dimen.Em(0.7))
	strutDepth := rawEm(settings, dimen.Em(0.3))
	rowSep := rawEm(settings, dimen.Em(0.25))
	columnSep := rawEm(settings, dimen.Em(5.0/12.0))

	numRows := len(array.Rows)
	numColumns := 0
	for _, row := range array.Rows {
		if len(row) > numColumns {
			numColumns = len(row)
		}
	}
	if numColumns == 0 {
		return nil
	}

	columns := make([][]*Layout, numColumns)

	colWidths := make([]dimen.Px, numColumns)
	rowHeights := make([]dimen.Px, 0, numRows)
	var prevDepth dimen.Px
	rowMax := strutHeight
	for _, row := range array.Rows {
		var maxDepth dimen.Px
		for colIdx := 0; colIdx < numColumns; colIdx++ {
			var square *Layout
			if colIdx < len(row) {
				var err error
				square, err = LayoutNodes(row[colIdx], settings)
				if err != nil {
					return err
				}
				rowMax = dimen.MaxPx(square.Height, rowMax)
				maxDepth = dimen.MaxPx(maxDepth, -square.Depth)
				colWidths[colIdx] = dimen.MaxPx(colWidths[colIdx], square.Width)
			} else {
				square = NewLayout()
			}
			columns[colIdx] = append(columns[colIdx], square)
		}

		rowHeights = append(rowHeights, rowMax+prevDepth)
		rowMax = strutHeight
		prevDepth = dimen.MaxPx(0, maxDepth-strutDepth)
	}

	body := NewHBox()
	if array.LeftDelimiter == nil {
		body.AddNode(kernHorz(rawEm(settings, settings.Ctx.Constants.NullDelimiterSpace)))
	}

	for colIdx, col := range columns {
		colBox := NewVBox()
		for rowIdx, row := range col {
			if row.Width < colWidths[colIdx] {
				row.Alignment = Centered(row.Width)
				row.Width = colWidths[colIdx]
			}

			if row.Height < rowHeights[rowIdx] {
				diff := rowHeights[rowIdx] - row.Height
				colBox.AddNode(kernVert(diff))
			}

			node := row.AsNode()
			if rowIdx+1 == numRows {
				depth := dimen.MaxPx(-node.Depth, rowSep)
				colBox.AddNode(node)
				colBox.AddNode(kernVert(depth))
			} else {
				colBox.AddNode(node)
				colBox.AddNode(kernVert(rowSep))
			}
		}

		body.AddNode(colBox.Build())
		if colIdx+1 < numColumns {
			body.AddNode(kernHorz(columnSep))
		}
	}

	if array.RightDelimiter == nil {
		body.AddNode(kernHorz(rawEm(settings, settings.Ctx.Constants.NullDelimiterSpace)))
	}

	builtBody := body.Build()
	height := builtBody.Height

	outer := NewVBox()
	offset := height.Scale(0.5) - scaledEm(settings, settings.Ctx.Constants.AxisHeight)
	outer.SetOffset(offset)
	outer.AddNode(builtBody)
	grid := outer.Build()

	if array.LeftDelimiter == nil && array.RightDelimiter == nil {
		l.AddNode(grid)
		return nil
	}

	flanked := NewHBox()
	axis := scaledEm(settings, settings.Ctx.Constants.AxisHeight)
	clearance := dimen.MaxPx(
		height.Scale(settings.Ctx.Constants.DelimiterFactor),
		height-rawEm(settings, settings.Ctx.Constants.DelimiterShortFall),
	)

	if array.LeftDelimiter != nil {
		variant, err := settings.Ctx.VertVariant(array.LeftDelimiter.Codepoint, settings.ToFont(clearance))
		if err != nil {
			return err
		}
		node, err := variantAsLayout(settings, variant)
		if err != nil {
			return err
		}
		flanked.AddNode(node.CenterOnAxis(axis))
	}

	flanked.AddNode(grid)

	if array.RightDelimiter != nil {
		variant, err := settings.Ctx.VertVariant(array.RightDelimiter.Codepoint, settings.ToFont(clearance))
		if err != nil {
			return err
		}
		node, err := variantAsLayout(settings, variant)
		if err != nil {
			return err
		}
		flanked.AddNode(node.CenterOnAxis(axis))
	}

	l.AddNode(flanked.Build())
	return nil
}
