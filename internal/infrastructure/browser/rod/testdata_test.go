package rod

const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	FormHTML = `<!DOCTYPE html>
<html>
<body>
	<form id="testForm">
		<input id="username" type="text" name="username" placeholder="User" />
		<input id="password" type="password" name="password" />
		<button id="submit" type="submit">Submit</button>
	</form>
</body>
</html>`

	InteractiveHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="btn">Click Me</button>
	<div id="result"></div>
	<script>
		document.getElementById('btn').addEventListener('click', function() {
			document.getElementById('result').textContent = 'Clicked!';
		});
	</script>
</body>
</html>`

	HiddenHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="shown">Shown</button>
	<div style="display:none"><button id="gone">Gone</button></div>
	<a href="/next">Next page</a>
	<script>var ignored = "script text";</script>
</body>
</html>`

	DelayedHTML = `<!DOCTYPE html>
<html>
<body>
	<script>
		setTimeout(function() {
			var el = document.createElement('p');
			el.id = 'late';
			el.textContent = 'Late';
			document.body.appendChild(el);
		}, 200);
	</script>
</body>
</html>`
)
