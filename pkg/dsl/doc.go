/*
Package dsl provides a fluent builder for machine definitions, as an
alternative to assembling the maps of domain.Definition by hand:

	def, err := dsl.New().
		Initial("red", "stop").
		State("red").Transform(domain.Echo).On("turnGreen", "turningGreen").
		State("turningGreen").Transform(domain.Echo).On("setGreen", "green").
		Build()
*/
package dsl
