// Package element defines the option records and enumerations shared by
// components and series.
package element

// Color is any CSS color the renderer accepts: "red", "#c23531", "rgba(0,0,0,0.3)".
type Color string

// ColorBy selects how the palette is applied.
type ColorBy string

const (
	ColorBySeries ColorBy = "series"
	ColorByData   ColorBy = "data"
)

// CoordinateSystem names the coordinate system a series is drawn in.
type CoordinateSystem string

const (
	CoordinateSystemCartesian2d CoordinateSystem = "cartesian2d"
	CoordinateSystemPolar       CoordinateSystem = "polar"
	CoordinateSystemGeo         CoordinateSystem = "geo"
	CoordinateSystemCalendar    CoordinateSystem = "calendar"
)

// BorderType is the dash pattern of a border or line.
type BorderType string

const (
	BorderTypeSolid  BorderType = "solid"
	BorderTypeDashed BorderType = "dashed"
	BorderTypeDotted BorderType = "dotted"
)

// AxisType is the scale of an axis.
type AxisType string

const (
	AxisTypeValue    AxisType = "value"
	AxisTypeCategory AxisType = "category"
	AxisTypeTime     AxisType = "time"
	AxisTypeLog      AxisType = "log"
)

// AxisPointerType is the indicator drawn by an axis pointer.
type AxisPointerType string

const (
	AxisPointerTypeLine   AxisPointerType = "line"
	AxisPointerTypeShadow AxisPointerType = "shadow"
	AxisPointerTypeCross  AxisPointerType = "cross"
	AxisPointerTypeNone   AxisPointerType = "none"
)

// TooltipTrigger selects what hovering triggers a tooltip on.
type TooltipTrigger string

const (
	TooltipTriggerItem TooltipTrigger = "item"
	TooltipTriggerAxis TooltipTrigger = "axis"
	TooltipTriggerNone TooltipTrigger = "none"
)

// Orient is a layout direction.
type Orient string

const (
	OrientHorizontal Orient = "horizontal"
	OrientVertical   Orient = "vertical"
)

// Symbol is the marker drawn at data points.
type Symbol string

const (
	SymbolCircle    Symbol = "circle"
	SymbolRect      Symbol = "rect"
	SymbolRoundRect Symbol = "roundRect"
	SymbolTriangle  Symbol = "triangle"
	SymbolDiamond   Symbol = "diamond"
	SymbolPin       Symbol = "pin"
	SymbolArrow     Symbol = "arrow"
	SymbolNone      Symbol = "none"
)

// MarkType is a statistic a mark line or point can be placed at.
type MarkType string

const (
	MarkTypeMin     MarkType = "min"
	MarkTypeMax     MarkType = "max"
	MarkTypeAverage MarkType = "average"
	MarkTypeMedian  MarkType = "median"
)
