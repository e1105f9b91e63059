package visualize

// Renderer draws assembled figures to image files. Implementations create
// the parent directory of the target path when it is absent.
type Renderer interface {
	DataMC(fig *DataMCFigure, path string) error
	Templates(fig *TemplateFigure, path string) error
	CorrelationMatrix(fig *CorrelationFigure, path string) error
}
